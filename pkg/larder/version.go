package larder

// Version is the larder release version.
const Version = "v0.1.0"
