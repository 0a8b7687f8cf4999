// Package logging builds the zap logger shared by the application.
package logging
