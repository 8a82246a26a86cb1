package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"go-closures/internal/shared/logger"
)

func TestDemoGlobal_OverwrittenFromOutside(t *testing.T) {
	assert.Equal(t, 10, demoGlobal(logger.NewNop(), 3))
	assert.Equal(t, 11, addGlobal())
}

func TestDemoLocal_ForgetsBetweenCalls(t *testing.T) {
	assert.Equal(t, 1, demoLocal(logger.NewNop(), 3))
}

func TestDemoClosure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	first, second := demoClosure(logger.Wrap(zap.New(core)), 3)

	assert.Equal(t, 3, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 3, logs.FilterMessage("Closure counter").Len())
}

func TestDemoClosure_UnaffectedByGlobal(t *testing.T) {
	count = 100
	first, _ := demoClosure(logger.NewNop(), 2)
	assert.Equal(t, 2, first)
}
