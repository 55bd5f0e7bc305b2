package user

import "github.com/kailas-cloud/fintrack/internal/db"

// All scripts reply -1 in the first slot when the user hash does not exist.
// ARGV[1] is the current month (YYYY-MM), ARGV[2] the current time (RFC 3339, UTC).

var rolloverScript = db.NewScript("usage_rollover", `
if redis.call('EXISTS', KEYS[1]) == 0 then
  return {-1}
end
local anchor = redis.call('HGET', KEYS[1], 'ai_reset_at') or ''
if string.sub(anchor, 1, 7) ~= ARGV[1] then
  redis.call('HSET', KEYS[1], 'ai_used', 0, 'ai_reset_at', ARGV[2])
  return {0}
end
return {tonumber(redis.call('HGET', KEYS[1], 'ai_used') or '0')}
`)

// ARGV[3] is the monthly limit for non-premium users.
// Reply: {allowed (0|1), used after the call}.
var consumeScript = db.NewScript("usage_consume", `
if redis.call('EXISTS', KEYS[1]) == 0 then
  return {-1, 0}
end
local anchor = redis.call('HGET', KEYS[1], 'ai_reset_at') or ''
if string.sub(anchor, 1, 7) ~= ARGV[1] then
  redis.call('HSET', KEYS[1], 'ai_used', 0, 'ai_reset_at', ARGV[2])
end
local used = tonumber(redis.call('HGET', KEYS[1], 'ai_used') or '0')
if redis.call('HGET', KEYS[1], 'is_premium') ~= '1' and used >= tonumber(ARGV[3]) then
  return {0, used}
end
return {1, redis.call('HINCRBY', KEYS[1], 'ai_used', 1)}
`)

// Decrements ai_used, never below zero.
var refundScript = db.NewScript("usage_refund", `
if redis.call('EXISTS', KEYS[1]) == 0 then
  return {-1}
end
local used = tonumber(redis.call('HGET', KEYS[1], 'ai_used') or '0')
if used <= 0 then
  return {0}
end
return {redis.call('HINCRBY', KEYS[1], 'ai_used', -1)}
`)
