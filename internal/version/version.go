package version

// AppVersion is the wrapctl release, overridden at build time with
// -ldflags "-X github.com/an-ttt/MySpyder-sub002/internal/version.AppVersion=...".
var AppVersion = "0.1.0-dev"
