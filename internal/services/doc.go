// Package services implements the business logic layer between the HTTP
// handlers and the data processing pipeline.
//
// AnalyticsService owns the upload lifecycle: it validates the incoming
// file, decodes it, runs the report selection, and keeps the most recent
// result bundle for the read endpoints. Exports (CSV, Excel, JSON) always
// operate on that latest bundle.
//
// Services follow these principles:
//
//	1. Context propagation for cancellation and tracing
//	2. Dependency injection for loose coupling
//	3. Domain-specific sentinel errors that handlers can transform
//	4. Cross-cutting concerns (logging, metrics) handled here, not in handlers
package services
