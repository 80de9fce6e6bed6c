// File: utils/constants.go
package utils

// ScheduleCachePrefix is the prefix used for Redis schedule cache keys.
const ScheduleCachePrefix = "schedule:"

// WeeklyCacheKey stores the weekly schedule snapshot.
const WeeklyCacheKey = ScheduleCachePrefix + "weekly"

// ExceptionsCacheKey stores the date exception snapshot.
const ExceptionsCacheKey = ScheduleCachePrefix + "exceptions"
