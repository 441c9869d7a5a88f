package products

import (
	"encoding/json"
	"log"
	"time"

	"milkbites/globals"
	"milkbites/models"
	"milkbites/rdx"
)

const listCacheTTL = 5 * time.Minute

func listCacheKey(category string) string {
	if category == "" {
		return "products:all"
	}
	return "products:" + category
}

func cachedList(category string) ([]byte, bool) {
	val, err := rdx.RdxGet(listCacheKey(category))
	if err != nil || val == "" {
		return nil, false
	}
	return []byte(val), true
}

func cacheList(category string, items []models.Product) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := rdx.SetWithExpiry(listCacheKey(category), string(data), listCacheTTL); err != nil {
		log.Println("products cache set error:", err)
	}
}

// invalidateListCache drops every cached product listing. Called on any
// catalog write so stale prices never reach the storefront.
func invalidateListCache() {
	keys, err := rdx.Conn.Keys(globals.Ctx, "products:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := rdx.RdxDel(keys...); err != nil {
		log.Println("products cache invalidation error:", err)
	}
}
