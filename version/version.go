package version

// Version is the release tag of the build, set with
// -ldflags "-X github.com/jake-scott/comfortcloud/version.Version=..."
var Version = "dev"
