package platform

// Package platform contains OS and filesystem integration: the download
// directory default, folder reveal, filename sanitizing, collision-safe renames
// and locating the ffmpeg executable.
