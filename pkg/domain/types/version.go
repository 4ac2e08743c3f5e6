package types

// Version is overwritten at build time with -ldflags "-X".
var Version = "dev"
