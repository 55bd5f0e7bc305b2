package redis

import (
	"context"
	"fmt"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/fintrack/internal/db"
)

// EvalInts runs a script via EVALSHA (falling back to EVAL on NOSCRIPT) and
// returns its integer array reply.
func (s *Store) EvalInts(ctx context.Context, script *db.Script, keys, args []string) ([]int64, error) {
	res := s.lua(script).Exec(ctx, s.client, keys, args)
	vals, err := res.AsIntSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpEval, Err: fmt.Errorf("script %s: %w", script.Name(), err)}
	}
	return vals, nil
}

func (s *Store) lua(script *db.Script) *rueidis.Lua {
	if l, ok := s.scripts.Load(script); ok {
		return l.(*rueidis.Lua)
	}
	l, _ := s.scripts.LoadOrStore(script, rueidis.NewLuaScript(script.Source()))
	return l.(*rueidis.Lua)
}
