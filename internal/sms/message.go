// Package sms builds bulk message batches and submits them to the provider.
package sms

import "time"

// TimestampLayout formats the send time appended to every message.
const TimestampLayout = "2006-01-02 15:04:05"

// Message is one entry of a bulk message batch.
type Message struct {
	Content     string `json:"content"`
	Destination string `json:"destination"`
	CustomerID  string `json:"customerId"`
}

// Batch is the request body of the bulk messages endpoint.
type Batch struct {
	Messages []Message `json:"messages"`
}

// NewBatch builds one message per destination, all sharing text stamped with now.
// Neither the number of destinations nor their format is checked.
func NewBatch(text, customerID string, destinations []string, now time.Time) Batch {
	content := text + " " + now.Format(TimestampLayout)
	b := Batch{Messages: make([]Message, 0, len(destinations))}
	for _, d := range destinations {
		b.Messages = append(b.Messages, Message{Content: content, Destination: d, CustomerID: customerID})
	}
	return b
}
