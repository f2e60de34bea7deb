// Package ui holds the interactive state of the portfolio page: the mobile
// navigation toggle, the FAQ disclosure list, the testimonial marquee loop
// and the hero parallax mapping.
//
// Every value here is owned by whoever creates it. The web server builds a
// fresh value per request from the state the browser sends back, applies one
// transition and renders the result, so nothing outlives a request.
package ui
