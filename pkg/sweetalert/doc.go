// Package sweetalert drives pop-up dialogs in the browser from the
// server. Each function sends one named custom message over the session;
// the embedded client runtime forwards the payload to the SweetAlert2
// library and relays the user's response back through the reactive input
// map.
//
// Dialogs are fire-and-forget: there is no queueing and no ordering
// guarantee beyond "last shown wins", because the underlying dialog
// library is single-instance. A dialog stays open until the user acts or
// Close is called.
//
// Responses arrive as input values. Confirm sets its input id to
// true/false; Input sets its input id to the raw dialog result (including
// null on dismissal), always dispatched with event priority:
//
//	sess.OnInput("confirm_delete", func(v any) {
//	    if v == true {
//	        // ...
//	    }
//	})
//	sweetalert.Confirm(sess, "confirm_delete", sweetalert.Options{
//	    Title: "Delete?", ShowCancelButton: true,
//	})
package sweetalert
