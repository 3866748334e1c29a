// Package submission defines the collaborator that delivers a completed form
// to a remote endpoint, plus two implementations: a third-party webhook form
// service and a same-origin script endpoint. Deployment chooses one; callers
// only see Submitter.
//
// A Submitter is called once per attempt. It never retries and enforces no
// timeout of its own; the caller's context bounds the call.
package submission
