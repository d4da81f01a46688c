package controller

import (
	"lightsout/engine"

	"github.com/sirupsen/logrus"
)

// Controller hands each cell renderer a callback bound to its coordinate.
type Controller struct {
	engine *engine.Engine
	log    logrus.FieldLogger
}

func New(e *engine.Engine, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = engine.DiscardLogger()
	}
	return &Controller{engine: e, log: log}
}

func (c *Controller) Engine() *engine.Engine {
	return c.engine
}

func (c *Controller) State() engine.State {
	return c.engine.State
}

func (c *Controller) HasWon() bool {
	return c.engine.HasWon()
}

// CellHandler returns a callback that toggles coord. Errors are logged and
// dropped; renderers never deal with them.
func (c *Controller) CellHandler(coord engine.Coord) func() {
	return func() {
		if err := c.engine.Toggle(coord); err != nil {
			c.log.WithError(err).WithField("coord", coord).Debug("toggle ignored")
		}
	}
}
