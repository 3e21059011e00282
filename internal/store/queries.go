package store

const queryUpsertToken = `
INSERT INTO tokens (user_id, access_token, refresh_token, expires_in, expires_at)
VALUES (@user_id, @access_token, @refresh_token, @expires_in, @expires_at)
ON CONFLICT (user_id) DO UPDATE SET
	access_token  = EXCLUDED.access_token,
	refresh_token = EXCLUDED.refresh_token,
	expires_in    = EXCLUDED.expires_in,
	expires_at    = EXCLUDED.expires_at
RETURNING created_at
`

const queryGetToken = `
SELECT user_id, access_token, refresh_token, expires_in, expires_at, created_at
FROM tokens
WHERE user_id = $1
`

const queryListExpiringTokens = `
SELECT user_id, access_token, refresh_token, expires_in, expires_at, created_at
FROM tokens
WHERE expires_at <= $1
ORDER BY expires_at
`
