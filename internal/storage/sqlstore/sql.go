package sqlstore

// position is the row's index in the dataset file; the planner relies on it for ties.
const listAttractionsSQL = `
SELECT city, type, name, entrance_fee, lat, lon, reviews
FROM attractions
ORDER BY position, id
`

const insertAttractionsPrefix = "INSERT INTO attractions\n  (position, city, type, name, entrance_fee, lat, lon, reviews)\nVALUES "

const mysqlOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  position     = VALUES(position),\n" +
	"  type         = VALUES(type),\n" +
	"  entrance_fee = VALUES(entrance_fee),\n" +
	"  lat          = VALUES(lat),\n" +
	"  lon          = VALUES(lon),\n" +
	"  reviews      = VALUES(reviews),\n" +
	"  updated_at   = CURRENT_TIMESTAMP\n"

const postgresOnConflict = " ON CONFLICT (city, name) DO UPDATE SET\n" +
	"  position     = EXCLUDED.position,\n" +
	"  type         = EXCLUDED.type,\n" +
	"  entrance_fee = EXCLUDED.entrance_fee,\n" +
	"  lat          = EXCLUDED.lat,\n" +
	"  lon          = EXCLUDED.lon,\n" +
	"  reviews      = EXCLUDED.reviews,\n" +
	"  updated_at   = now()\n"
