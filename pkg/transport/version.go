package transport

// Version is the transport module version, reported in DefaultUserAgent.
const Version = "0.2.0"
