// Package flow implements the neviweb130 setup and options wizards as step
// functions.
//
// A step receives either nil (render request) or a complete submission and
// returns a Result directive for the front end: show a form (with optional
// per-field errors), create an entry, or abort. Steps keep no state between
// calls beyond the unique ID of the account being set up, and they never
// persist anything themselves; applying a ResultCreateEntry is the caller's
// job.
//
// # Setup wizard
//
//	f := flow.NewConfigFlow(validator, store)
//	res := f.StepUser(ctx, nil)            // ResultForm "user"
//	res = f.StepUser(ctx, &flow.UserInput{ // ResultCreateEntry, or the form
//	    Username: "jane@example.com",      // again with errors["base"] set
//	    Password: pw,
//	})
//
// An account that already has an entry aborts with "already_configured"
// before any request is sent to Neviweb.
//
// # Options wizard
//
//	o := flow.NewOptionsFlow(entry.Snapshot())
//	res := o.StepInit(nil)        // ResultForm "init" pre-filled from the entry
//	res = o.StepInit(&submitted)  // ResultCreateEntry titled "Options"
package flow
