package version

import "runtime"

var (
	// These values are injected during build - DO NOT MODIFY
	Version   = "VERSION_PLACEHOLDER"
	CommitSHA = "COMMIT_PLACEHOLDER"
)

func GetVersionInfo() string {
	return "flashcards " + Version
}

// GetDetailedVersionInfo is what `flashcards -version` prints.
func GetDetailedVersionInfo() string {
	return "flashcards\n" +
		"Version:  " + Version + "\n" +
		"Commit:   " + CommitSHA + "\n" +
		"Go:       " + runtime.Version() + "\n"
}
