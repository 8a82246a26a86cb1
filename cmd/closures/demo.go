package main

import (
	"go.uber.org/zap"

	"go-closures/internal/pkg/counter"
	"go-closures/internal/shared/logger"
)

// count is visible to the whole package, so anything here can change it
// without going through addGlobal.
var count int

func addGlobal() int {
	count++
	return count
}

// addLocal starts from zero on every call; nothing survives between calls.
func addLocal() int {
	count := 0
	count++
	return count
}

// demoGlobal shows that outside code can overwrite the shared counter.
func demoGlobal(log *logger.Logger, calls int) int {
	count = 0
	for i := 0; i < calls; i++ {
		log.Info("Global counter", zap.Int("value", addGlobal()))
	}

	count = 10
	log.Info("Global counter overwritten from outside", zap.Int("value", count))
	return count
}

// demoLocal shows that a local counter forgets its value between calls.
func demoLocal(log *logger.Logger, calls int) int {
	last := 0
	for i := 0; i < calls; i++ {
		last = addLocal()
	}
	log.Info("Local counter after repeated calls", zap.Int("calls", calls), zap.Int("value", last))
	return last
}

// demoClosure shows two independent closure counters.
func demoClosure(log *logger.Logger, calls int) (first, second int) {
	myCounter := counter.CreateCounter()
	other := counter.CreateCounter()

	for i := 0; i < calls; i++ {
		first = myCounter()
		log.Info("Closure counter", zap.Int("value", first))
	}

	second = other()
	log.Info("Second closure counter is independent", zap.Int("value", second))
	return first, second
}
