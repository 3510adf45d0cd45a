package components

import "github.com/yohamta/donburi"

// MessageData is one line of text shown to a player.
type MessageData struct {
	Player   donburi.Entity
	Text     string
	TimeLeft float64 // seconds
}

// MessageQueueData is a singleton holding the messages on screen
type MessageQueueData struct {
	Messages []MessageData
}

var MessageQueue = donburi.NewComponentType[MessageQueueData]()
