package app

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/miniplayer/internal/errmsg"
	"github.com/llehouerou/miniplayer/internal/motion"
	"github.com/llehouerou/miniplayer/internal/playerstate"
	"github.com/llehouerou/miniplayer/internal/state"
)

// restoreState returns the persisted player state. Only states with a
// layout of their own are restored; anything else starts expanded.
func restoreState(store state.Interface, log logrus.FieldLogger) playerstate.State {
	endpoint, err := store.GetPlayerState()
	if err != nil {
		log.WithError(err).Warn(errmsg.Format(errmsg.OpStateRestore, err))
		return playerstate.Expanded
	}
	s, ok := playerstate.ByEndpoint(endpoint)
	if !ok {
		return playerstate.Expanded
	}
	switch s {
	case playerstate.Expanded, playerstate.Collapsed, playerstate.MiniPlayer:
		return s
	default:
		return playerstate.Expanded
	}
}

// restoreMiniPosition returns where the mini player last came to rest, or
// nil when nothing was committed. The resting position is the committed
// margin minus the translation still pending at commit time.
func restoreMiniPosition(store state.Interface, log logrus.FieldLogger) *motion.Point {
	set, err := store.ConstraintSet(playerstate.MiniPlayer.Endpoint())
	if err != nil {
		log.WithError(err).Warn(errmsg.Format(errmsg.OpConstraintLoad, err))
		return nil
	}
	c, ok := set.Get(miniViewID)
	if !ok {
		return nil
	}
	return &motion.Point{
		X: c.MarginStart - c.TranslationX,
		Y: c.MarginTop - c.TranslationY,
	}
}
