package mongo

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const productsNS = "facetime.products"

func productDoc(id primitive.ObjectID, name, skinType string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "skin_type", Value: skinType},
		{Key: "description", Value: name + " description"},
	}
}

func TestProductRepository_FindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every product", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch,
			productDoc(first, "Cleanser", "oily"),
			productDoc(second, "Sunscreen", "all"),
		))

		products, err := repo.FindAll(context.Background())
		if err != nil {
			t.Fatalf("FindAll error: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if products[0].ID != first.Hex() || products[0].Name != "Cleanser" || products[0].SkinType != "oily" {
			t.Fatalf("unexpected product: %+v", products[0])
		}
		if products[1].Description != "Sunscreen description" {
			t.Fatalf("unexpected description: %q", products[1].Description)
		}
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch))

		products, err := repo.FindAll(context.Background())
		if err != nil {
			t.Fatalf("FindAll error: %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected no products, got %d", len(products))
		}
	})
}

func TestProductRepository_FindBySkinTypes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filters by skin type", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch,
			productDoc(primitive.NewObjectID(), "Toner", "dry"),
		))

		products, err := repo.FindBySkinTypes(context.Background(), "dry", "all")
		if err != nil {
			t.Fatalf("FindBySkinTypes error: %v", err)
		}
		if len(products) != 1 || products[0].Name != "Toner" {
			t.Fatalf("unexpected products: %+v", products)
		}
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		if _, err := repo.FindBySkinTypes(context.Background(), "dry"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
