package systems

import (
	"fmt"

	"github.com/automoto/duelcore/archetypes"
	"github.com/automoto/duelcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const messageDuration = 3.0

func getOrCreateMessageQueue(e *ecs.ECS) *components.MessageQueueData {
	entry, ok := components.MessageQueue.First(e.World)
	if !ok {
		entry = archetypes.MessageQueue.Spawn(e)
	}
	return components.MessageQueue.Get(entry)
}

// PostMessage shows a line of text to one player.
func PostMessage(e *ecs.ECS, player *donburi.Entry, format string, args ...any) {
	q := getOrCreateMessageQueue(e)
	q.Messages = append(q.Messages, components.MessageData{
		Player:   player.Entity(),
		Text:     fmt.Sprintf(format, args...),
		TimeLeft: messageDuration,
	})
}

// MessagesFor lists the messages currently shown to a player, oldest first.
func MessagesFor(e *ecs.ECS, player *donburi.Entry) []string {
	var out []string
	for _, m := range getOrCreateMessageQueue(e).Messages {
		if m.Player == player.Entity() {
			out = append(out, m.Text)
		}
	}
	return out
}

// UpdateMessages ages the message queue and drops expired lines.
func UpdateMessages(e *ecs.ECS) {
	q := getOrCreateMessageQueue(e)
	dt := deltaTime(e)
	kept := q.Messages[:0]
	for _, m := range q.Messages {
		m.TimeLeft -= dt
		if m.TimeLeft > 0 {
			kept = append(kept, m)
		}
	}
	q.Messages = kept
}
