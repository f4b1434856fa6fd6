// Package server is the session kernel the widgets and dialog relays run
// against: one websocket connection per browser session, a reactive input
// map fed by the client, a restoration map carried across session resumes,
// and a custom-message channel for server-to-client pushes.
//
// The wire protocol is JSON frames. Inbound: "input" (an input value
// changed, optionally with event priority), "restore" (previous session
// values supplied at handshake), "ping". Outbound: "message" (a named
// custom message with a payload, consumed by registered client handlers)
// and "pong".
//
// All session callbacks (input listeners) run on the session's read loop,
// so handler code observes the single-threaded, event-driven model of the
// client: no two callbacks for one session run concurrently.
package server
