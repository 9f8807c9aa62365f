package concurrent

import "sync"

// Pool executes the given tasks with at most size concurrent workers.
// It blocks until all tasks have finished.
func Pool(size int, tasks ...func()) {
	if size < 1 {
		size = 1
	}
	slots := make(chan struct{}, size)
	wg := new(sync.WaitGroup)
	wg.Add(len(tasks))
	for _, task := range tasks {
		slots <- struct{}{}
		go func(exec func()) {
			defer func() {
				<-slots
				wg.Done()
			}()
			exec()
		}(task)
	}
	wg.Wait()
}
