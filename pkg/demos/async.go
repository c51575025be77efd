package demos

import "time"

// SupplyAsync runs fn on its own goroutine and returns a channel that yields
// its result once. The channel is buffered, so the goroutine never leaks even
// if the caller abandons the result.
func SupplyAsync(fn func() string) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- fn()
	}()
	return ch
}

// AsyncHello supplies "Hello, World!" asynchronously after delay and prints
// the value once it arrives.
func AsyncHello(delay time.Duration) {
	future := SupplyAsync(func() string {
		time.Sleep(delay)
		return "Hello, World!"
	})
	printLine(<-future)
}
