// doc.go - package documentation for xgx-panicmsg
//
// Package panicmsg turns a recovered panic value into a readable message.
// It is designed to be:
//   - Total when you need a string, partial when you need to know
//   - Allocation-free and panic-free, so it is safe inside a panic hook
//   - Policy-free (no logging, printing or reporting in this package)
//
// # Entry Points
//
//	+-----------------------------+---------------+-----------------------+
//	| Function                    | Input         | No text recovered     |
//	+-----------------------------+---------------+-----------------------+
//	| Message(payload)            | any / *Box    | Placeholder           |
//	| TryMessage(payload)         | any / *Box    | "", false             |
//	| ReportMessage(report)       | Report        | Placeholder           |
//	| TryReportMessage(report)    | Report        | "", false             |
//	+-----------------------------+---------------+-----------------------+
//
// Placeholder is the literal "Box<dyn Any>".
//
// # Recognized Payloads
//
// Exactly two shapes carry text, checked in order:
//   - string: returned as is (same backing storage, no copy)
//   - []byte: returned as a string view over the slice (no copy)
//
// Anything else, including error values and fmt.Stringer implementations,
// is "no text". Use guard.PanicError when you want an error payload's text.
//
//	msg := panicmsg.Message(recover())
//
// # Containers
//
// guard.Catch returns the recovered value inside a *Box. Message and
// TryMessage accept the *Box as well as the value it holds:
//
//	box := guard.Catch(func() { panic("gus") })
//	panicmsg.Message(box)         // "gus"
//	panicmsg.Message(box.Value()) // "gus"
//
// Only one level is unwrapped. The Report entry points never unwrap; a
// report's Payload() is already the bare value.
//
// # Lifetimes
//
// A message recovered from a []byte aliases the slice. Copy it (strings.Clone)
// before mutating the slice or holding the message past the payload.
package panicmsg
