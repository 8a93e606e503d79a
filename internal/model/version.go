package model

// Version is the released version of axscan, set here and referenced by
// the CLI, web server and update check.
const Version = "0.2.1"
