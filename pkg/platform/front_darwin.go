//go:build darwin

// Package platform holds the OS-specific bits of window handling.
package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework AppKit
#import <Cocoa/Cocoa.h>
#import <AppKit/AppKit.h>

int isAppActive() {
    return [NSApp isActive] ? 1 : 0;
}

void activateApp() {
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// BringToFront activates the application when another one has focus.
// Opening a window from the menu bar tray does not do this on macOS.
func BringToFront() {
	if C.isAppActive() == 1 {
		return
	}
	C.activateApp()
}
