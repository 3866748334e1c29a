// Package intake is the receiving end of the script submission backend. It
// accepts a form posted as JSON, checks the required fields and the email
// shape, strips markup and hands the entry to a Sink. Clients read the
// {"success", "message"} answer with submission.Script.
package intake
