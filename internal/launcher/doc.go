// Package launcher persists the launcher's own configuration and builds
// channel records from Unity scene paths.
//
// A channel associates a launcher entry with a Unity project/scene pair.
// The Store reads and writes the whole LauncherConfig document as
// pretty-printed JSON at an injected path; there is no partial update
// API. Channel construction validates the scene file and derives the
// Unity project root by walking ancestor directories for an Assets
// folder.
package launcher
