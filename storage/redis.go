package storage

import (
	"github.com/garyburd/redigo/redis"
	"github.com/kaspar030/clist"
)

// RedisStorage stores each list as a native redis list of handles under
// "list:<name>". The "lists" set indexes the names.
type RedisStorage struct {
	*redis.Pool
}

func NewRedisStorage(address string) *RedisStorage {
	pool := redis.NewPool(func() (redis.Conn, error) {
		return redis.Dial("tcp", address)
	}, 10)
	return &RedisStorage{pool}
}

func (r *RedisStorage) ListCount() uint32 {
	conn := r.Get()
	defer conn.Close()
	i, _ := redis.Int(conn.Do("scard", "lists"))
	return uint32(i)
}

func (r *RedisStorage) Save(name string, list *clist.List) error {
	conn := r.Get()
	defer conn.Close()

	key := listKey(name)
	args := redis.Args{}.Add(key)
	list.Each(func(h clist.Handle) bool {
		args = args.Add(uint32(h))
		return true
	})

	conn.Send("multi")
	conn.Send("del", key)
	if len(args) > 1 {
		conn.Send("rpush", args...)
	}
	conn.Send("sadd", "lists", name)
	_, err := conn.Do("exec")
	return err
}

func (r *RedisStorage) Delete(name string) error {
	conn := r.Get()
	defer conn.Close()
	conn.Send("multi")
	conn.Send("del", listKey(name))
	conn.Send("srem", "lists", name)
	_, err := conn.Do("exec")
	return err
}

func (r *RedisStorage) EachList(f func(name string, ids []clist.Handle)) error {
	conn := r.Get()
	defer conn.Close()

	names, err := redis.Strings(conn.Do("smembers", "lists"))
	if err != nil {
		return err
	}
	for _, name := range names {
		values, err := redis.Ints(conn.Do("lrange", listKey(name), 0, -1))
		if err != nil {
			return err
		}
		ids := make([]clist.Handle, len(values))
		for i, value := range values {
			ids[i] = clist.Handle(value)
		}
		f(name, ids)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	return r.Pool.Close()
}

func listKey(name string) string {
	return "list:" + name
}
