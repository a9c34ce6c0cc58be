// Package prompt collects model payloads interactively. Collect walks a
// model descriptor and asks for each writable field through a Driver; the
// default Driver is backed by github.com/AlecAivazis/survey.
package prompt
