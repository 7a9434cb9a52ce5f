package spline

func (c *Curve) CacheLen() int { return len(c.tangents) }

const MaxCacheSize = maxCacheSize
