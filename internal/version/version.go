// Package version pins the app version surfaced by the CLI and HTTP API.
package version

// AppVersion is reported by `easel version` and GET /api/version.
const AppVersion = "0.3.0"
