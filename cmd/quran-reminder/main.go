// Quran Reminder - cross-platform tray application that periodically
// shows a random Quranic verse with its Persian translation.
//
// Lives in the system tray; Ctrl+Shift+Q shows an ayah on demand.
package main

import (
	"log"

	"quran-reminder/internal/app"
	"quran-reminder/internal/hotkey"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("Quran Reminder %s starting...", Version)

	// Run on the main thread (required on macOS and for some GUI backends)
	hotkey.RunOnMainThread(run)
}

func run() {
	app.New().Run()
}
