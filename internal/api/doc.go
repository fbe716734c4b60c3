// Package api exposes the study aid over HTTP. It decodes and validates
// requests, calls the session stores and the timer, and maps their errors to
// status codes and user-facing messages. Rejection reasons from input
// moderation surface here as the messages a UI shows to the user.
package api
