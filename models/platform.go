package models

// Platform is the caller's runtime context, derived per request from the user agent
type Platform string

const (
	PlatformDesktop Platform = "desktop"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)
