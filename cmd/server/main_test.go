package main

import (
	"sync"
	"testing"
)

// Shutdown closes a client's send channel while the update pump may
// still be draining results into reply. The closed flag has to win
// that race without a send-on-closed-channel panic.
func TestReplyAfterShutdownClose(t *testing.T) {
	client := &WebSocketClient{
		clientID: "test-client",
		send:     make(chan interface{}, 1),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			client.reply("RESULT", map[string]interface{}{"seq": i})
		}
	}()

	client.mu.Lock()
	client.closed = true
	client.mu.Unlock()
	close(client.send)

	wg.Wait()

	if !client.closed {
		t.Fatal("expected client to stay closed")
	}
}

func TestReplyDropsWhenBufferFull(t *testing.T) {
	client := &WebSocketClient{
		clientID: "test-client",
		send:     make(chan interface{}, 1),
	}

	client.reply("RESULT", map[string]interface{}{"seq": 1})
	client.reply("RESULT", map[string]interface{}{"seq": 2})

	if got := len(client.send); got != 1 {
		t.Fatalf("expected 1 buffered message, got %d", got)
	}
}
