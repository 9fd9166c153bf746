// Package mailer provides a universal email sending interface for certificate delivery.
//
// The package separates message preparation from delivery: providers implement
// the Sender interface, while Mailer handles attachment loading and body
// rendering before handing a fully-prepared Email to the provider.
//
// # Providers
//
// Three providers ship with the package, each in its own subpackage:
//
//   - resend: transactional delivery through the Resend API
//   - gmail: authenticated SMTP relay through smtp.gmail.com
//   - ses: AWS SES raw-MIME delivery
//
// Providers are selected by key through the provider subpackage, which exposes
// a closed enumeration of the supported kinds. Unknown keys and missing
// credentials fail at construction, before any message is processed.
//
// # Message Bodies
//
// Message bodies are written in markdown. RenderBody converts them to HTML and
// sanitizes the result, so user-supplied content cannot inject markup into the
// outgoing email.
//
// # Delivery Semantics
//
// A provider delivers the attachment bytes it is handed; it never touches the
// attachment file on disk. Deleting rendered certificates after delivery is the
// batch processor's job, not the provider's.
package mailer
