// SPDX-License-Identifier: MIT

package engine

// HTTP routes.
const (
	GlobalOptPath = "/v1/global-opt"
	HealthPath    = "/healthz"
)

// GlobalOptRequest is the body of POST /v1/global-opt.
type GlobalOptRequest struct {
	Adjacency    [][]float64 `json:"adjacency"`
	Distribution []float64   `json:"distribution"`
}

// GlobalOptResponse carries either a transition matrix or an error message.
type GlobalOptResponse struct {
	Transition [][]float64 `json:"transition,omitempty"`
	Error      string      `json:"error,omitempty"`
}
