package inference

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/trknhr/creditrisk/internal/applicant"
	"github.com/trknhr/creditrisk/internal/logger"
)

// Cache memoizes Score per applicant. Errors are not cached.
type Cache struct {
	rt  *Runtime
	lru *lru.Cache[applicant.Input, Result]
}

func NewCache(rt *Runtime, size int) (*Cache, error) {
	c, err := lru.New[applicant.Input, Result](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}
	return &Cache{rt: rt, lru: c}, nil
}

func (c *Cache) Score(in applicant.Input) (Result, error) {
	if res, ok := c.lru.Get(in); ok {
		logger.Debug("score cache hit")
		return res, nil
	}
	res, err := c.rt.Score(in)
	if err != nil {
		return Result{}, err
	}
	c.lru.Add(in, res)
	return res, nil
}

func (c *Cache) Len() int { return c.lru.Len() }
