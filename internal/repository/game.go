package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/handlers/mysql"
	"github.com/Encorpluptit/wizz-technical-test/internal/http-server/model"
)

type GameRepository struct {
	dbhandler mysql.Handler
}

func NewGameRepository(dbhandler mysql.Handler) *GameRepository {
	return &GameRepository{dbhandler: dbhandler}
}

const gameColumns = "id,publisher_id,name,platform,store_id,bundle_id,app_version,is_published"

func (repo *GameRepository) FindAll() ([]model.Game, error) {
	const op = "repository.game.FindAll"

	const query = "SELECT " + gameColumns + " FROM games"

	rows, err := repo.dbhandler.PrepareAndQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	games, err := scanGames(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return games, nil
}

// FindByID returns nil without an error when no game has the given id.
func (repo *GameRepository) FindByID(id int64) (*model.Game, error) {
	const op = "repository.game.FindByID"

	const query = "SELECT " + gameColumns + " FROM games WHERE id = ?"

	row, err := repo.dbhandler.PrepareAndQueryRow(query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	game := &model.Game{}

	err = row.Scan(
		&game.ID,
		&game.PublisherID,
		&game.Name,
		&game.Platform,
		&game.StoreID,
		&game.BundleID,
		&game.AppVersion,
		&game.IsPublished)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return game, nil
}

func (repo *GameRepository) Save(game model.Game) (int64, error) {
	const op = "repository.game.Save"

	const query = "INSERT INTO games(publisher_id, name, platform, store_id, bundle_id, app_version, is_published, created_at, updated_at) " +
		"VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)"

	now := time.Now()

	res, err := repo.dbhandler.PrepareAndExecute(query,
		game.PublisherID,
		game.Name,
		game.Platform,
		game.StoreID,
		game.BundleID,
		game.AppVersion,
		game.IsPublished,
		now,
		now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// Update overwrites every field of the game with the given id.
func (repo *GameRepository) Update(id int64, game model.Game) error {
	const op = "repository.game.Update"

	const query = "UPDATE games SET publisher_id = ?, name = ?, platform = ?, store_id = ?, bundle_id = ?, app_version = ?, is_published = ?, updated_at = ? " +
		"WHERE id = ?"

	_, err := repo.dbhandler.PrepareAndExecute(query,
		game.PublisherID,
		game.Name,
		game.Platform,
		game.StoreID,
		game.BundleID,
		game.AppVersion,
		game.IsPublished,
		time.Now(),
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (repo *GameRepository) Delete(id int64) error {
	const op = "repository.game.Delete"

	const query = "DELETE FROM games WHERE id = ?"

	if _, err := repo.dbhandler.PrepareAndExecute(query, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (repo *GameRepository) FindByFilter(name string, platform string) ([]model.Game, error) {
	const op = "repository.game.FindByFilter"

	query, args := searchQuery(name, platform)

	rows, err := repo.dbhandler.PrepareAndQuery(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	games, err := scanGames(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return games, nil
}

// SaveAll inserts all games in a single multi-row statement.
func (repo *GameRepository) SaveAll(games []model.Game) error {
	const op = "repository.game.SaveAll"

	if len(games) == 0 {
		return nil
	}

	query, args := bulkInsertQuery(games, time.Now())

	if _, err := repo.dbhandler.PrepareAndExecute(query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// searchQuery builds the filtered SELECT for the search operation. An empty
// name skips the name filter, an empty platform skips the platform filter;
// both filters combine with AND. Platform is matched verbatim: the handler
// lowercases it before calling.
func searchQuery(name string, platform string) (string, []interface{}) {
	query := "SELECT " + gameColumns + " FROM games"

	var (
		clauses []string
		args    []interface{}
	)

	if name != "" {
		clauses = append(clauses, "name LIKE ?")
		args = append(args, "%"+name+"%")
	}

	if platform != "" {
		clauses = append(clauses, "platform = ?")
		args = append(args, platform)
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	return query, args
}

func bulkInsertQuery(games []model.Game, now time.Time) (string, []interface{}) {
	query := "INSERT INTO games(publisher_id, name, platform, store_id, bundle_id, app_version, is_published, created_at, updated_at) VALUES"

	rows := make([]string, 0, len(games))
	args := make([]interface{}, 0, len(games)*9)

	for _, game := range games {
		rows = append(rows, "(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			game.PublisherID,
			game.Name,
			game.Platform,
			game.StoreID,
			game.BundleID,
			game.AppVersion,
			game.IsPublished,
			now,
			now)
	}

	return query + strings.Join(rows, ", "), args
}

func scanGames(rows *sql.Rows) ([]model.Game, error) {
	defer rows.Close()

	games := make([]model.Game, 0)

	for rows.Next() {
		var game model.Game

		err := rows.Scan(
			&game.ID,
			&game.PublisherID,
			&game.Name,
			&game.Platform,
			&game.StoreID,
			&game.BundleID,
			&game.AppVersion,
			&game.IsPublished)
		if err != nil {
			return nil, err
		}

		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return games, nil
}
