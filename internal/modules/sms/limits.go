package sms

// Request limits shared by every endpoint that accepts raw messages.
const (
	// MaxMessagesPerRequest bounds the work a single request can ask for
	MaxMessagesPerRequest = 5000
	// MaxRequestBytes caps the size of a JSON body carrying messages
	MaxRequestBytes = 4 << 20
)
