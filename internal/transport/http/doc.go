// Package http implements the HTTP request handlers for the submission
// analytics service. It is a thin layer between transport and business
// logic: handlers parse requests, delegate to the services package, and
// translate service errors into structured JSON responses.
//
// # Request Flow
//
//	HTTP Request → Chi Router → Middleware → Handler → Service
//	                                             ↓
//	HTTP Response ← render.JSON / ErrorHandler ←─┘
//
// Handlers never compute analytics themselves; every report comes from the
// AnalyticsService's latest result bundle.
package http
