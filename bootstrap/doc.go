// Package bootstrap wires faultkit together at process startup: logger,
// message catalog, code-registry validation, and the boundary handler.
//
// Setup fails — and the process must not begin serving — when any
// registered code lacks a resolvable template in a configured locale.
//
//	app, err := bootstrap.Setup(settings, code.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	router.Use(boundary.Middleware(app.Handler))
package bootstrap
