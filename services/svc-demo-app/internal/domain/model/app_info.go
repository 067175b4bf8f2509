package model

const AppStatusRunning = "running"

// AppInfo is what the dashboard shows about the running instance.
type AppInfo struct {
	AppName          string
	Environment      string
	SecretConfigured bool
	Status           string
}
