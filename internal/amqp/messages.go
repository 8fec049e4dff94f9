package amqp

import (
	"encoding/json"
	"time"
)

// StoreUpdateMessage announces that a snapshot key changed. Observers reload
// or invalidate whatever they derived from that key. Origin identifies the
// writing client so an observer can skip notifications for its own writes.
type StoreUpdateMessage struct {
	Key       string    `json:"key"`
	Revision  int64     `json:"revision"`
	Origin    string    `json:"origin"`
	Timestamp time.Time `json:"timestamp"`
}

func NewStoreUpdateMessage(key string, revision int64, origin string) *StoreUpdateMessage {
	return &StoreUpdateMessage{
		Key:       key,
		Revision:  revision,
		Origin:    origin,
		Timestamp: time.Now(),
	}
}

func (m *StoreUpdateMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func StoreUpdateMessageFromJSON(data []byte) (*StoreUpdateMessage, error) {
	var msg StoreUpdateMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
