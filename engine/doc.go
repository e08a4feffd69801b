// SPDX-License-Identifier: MIT

// Package engine connects the sampler to an external global-optimization
// engine: a slow-starting solver that, given an adjacency matrix and a
// target distribution, returns an optimized transition matrix.
//
// The pieces:
//
//   - Engine is the one-method contract (GlobalOpt).
//   - Bridge owns a single lazily started Session. Callers Acquire a Handle,
//     Submit through it and Release it; the session starts on the first
//     Submit, every call is serialized by the bridge mutex, and the session
//     is closed when the last handle is released. A failed start surfaces
//     as ErrUnavailable and is retried on the next Submit.
//   - HTTPClient speaks the JSON protocol below; Dial turns it into a
//     StartFunc that health-checks the remote before handing it out.
//   - NewHandler serves the same protocol over chi for any Engine, so a
//     LocalEngine (an in-process grid search over lazy Metropolis-Hastings
//     chains) can stand in for the real solver.
//
// Protocol:
//
//	POST /v1/global-opt  {"adjacency": [[..]], "distribution": [..]}
//	  200 {"transition": [[..]]}
//	  422 {"error": ".."}   the problem is infeasible (ErrInfeasible)
//	  4xx/5xx {"error": ".."}  anything else (ErrUnavailable on the client)
//	GET  /healthz        200 "ok"
package engine
