package ffitoolkit

// Version is the library version reported across the boundary by
// ffi_version and by the ffitk shell banner.
const Version = "0.1.0"
