package tempbox

const (
	luaPutEntry = `
		-- Store an entry and register its ID in the ordered ID set
		-- KEYS[1] = entry key
		-- KEYS[2] = ID set key
		-- ARGV[1] = entry ID
		-- ARGV[2] = entry data (JSON)

		redis.call('SET', KEYS[1], ARGV[2])
		redis.call('ZADD', KEYS[2], 0, ARGV[1])
		return 1
		`

	luaDeleteEntry = `
		-- Remove an entry and its ID
		-- KEYS[1] = entry key
		-- KEYS[2] = ID set key
		-- ARGV[1] = entry ID
		-- Returns: number of entries removed

		local removed = redis.call('DEL', KEYS[1])
		redis.call('ZREM', KEYS[2], ARGV[1])
		return removed
		`
)
