package store

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createMenu = `INSERT INTO menus (id, owner_id, data)
    VALUES ($1, $2, $3)
    RETURNING id, owner_id, data, created_at, updated_at;`

	updateMenu = `UPDATE menus
    SET data = $1, updated_at = NOW()
    WHERE id = $2 AND owner_id = $3
    RETURNING id, owner_id, data, created_at, updated_at;`

	getMenuByID = `SELECT id, owner_id, data, created_at, updated_at
    FROM menus
    WHERE id = $1;`

	getMenuOwner = `SELECT owner_id
    FROM menus
    WHERE id = $1;`

	listMenusByOwner = `SELECT id, owner_id, data, created_at, updated_at
    FROM menus
    WHERE owner_id = $1
    ORDER BY updated_at DESC;`

	deleteMenu = `DELETE FROM menus
    WHERE id = $1 AND owner_id = $2;`
)
