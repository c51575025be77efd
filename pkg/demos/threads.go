package demos

import "sync"

func printMessage(message string) {
	printLine(message)
}

// MultipleThread starts one goroutine per message and waits for both to
// finish. Print order between the goroutines is not defined.
func MultipleThread() {
	var wg sync.WaitGroup
	for _, msg := range []string{"Thread 1", "Thread 2"} {
		wg.Add(1)
		go func(m string) {
			defer wg.Done()
			printMessage(m)
		}(msg)
	}
	wg.Wait()
}
