// Package server provides HTTP routing, middleware and the drills route handlers.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering. The root path "/"
// is registered as an exact match so unknown paths fall through to the router's not-found handler.
//
// # Handler Interface
//
// Route handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing one handler to own several related paths (the static menu routes, for instance).
//
// # Routes
//
//	GET /                  → static greeting
//	GET /burgers           → static text
//	GET /pizza/pepperoni   → static text
//	GET /pizza/pineapple   → static text
//	GET /echo              → request details
//	GET /queryViewer       → logs the query, empty body
//	GET /greetings         → name + race greeting
//	GET /sum               → integer addition
//	GET /cipher            → shift transform
//	GET /lotto             → six-number lottery
//	GET /health            → JSON status
//
// Validation failures are answered with 400 and a plain-text message meant for the user.
//
// # Middleware
//
// [RequestID], [Logging], [Recover] and [RateLimit] are installed by [NewApp] in that order.
//
// # Lifecycle
//
// [Server] wraps [http.Server] with timeouts and shuts down gracefully when its context is cancelled.
package server
