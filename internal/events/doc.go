// Package events provides a small in-process publish/subscribe mechanism.
//
// Components emit events without knowing which handlers will process them.
// The countdown timer uses it to announce completion; the server registers
// handlers at startup.
//
// The primary components are:
// - Event: a typed notification with a JSON payload
// - Handler: interface for components that can handle events
// - Emitter: interface for components that can emit events
package events
