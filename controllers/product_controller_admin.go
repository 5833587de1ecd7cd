package controllers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopnest/database"
	"shopnest/models"
	"shopnest/services"
)

const maxProductImages = 5

// AddProduct creates a catalog entry from a multipart form, uploading
// up to five images. The first image becomes the primary one.
func AddProduct(c *gin.Context) {
	title := c.PostForm("title")
	priceRaw := c.PostForm("price")
	description := c.PostForm("description")
	category := c.PostForm("category")

	if title == "" || priceRaw == "" || description == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields."})
		return
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please upload at least one image."})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please upload at least one image."})
		return
	}
	if len(files) > maxProductImages {
		files = files[:maxProductImages]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	images, err := uploadProductImages(ctx, files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	product := models.Product{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Price:       price,
		Description: description,
		Category:    category,
		Stock:       models.StockOut,
		Image:       images[0],
		Images:      images,
	}

	if _, err := database.ProductCollection.InsertOne(ctx, product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product Added Successfully",
		"product": product,
	})
}

// GetProductsAdmin lists the whole catalog, out-of-stock included.
func GetProductsAdmin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.ProductCollection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func GetProductAdmin(c *gin.Context) {
	GetProduct(c)
}

// EditProduct applies the provided fields only; new images are appended
// and the primary image is never cleared.
func EditProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var product models.Product
	if err := database.ProductCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	if title := c.PostForm("title"); title != "" {
		product.Title = title
	}
	if priceRaw := c.PostForm("price"); priceRaw != "" {
		price, err := strconv.ParseFloat(priceRaw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
			return
		}
		product.Price = price
	}
	if description := c.PostForm("description"); description != "" {
		product.Description = description
	}
	if category := c.PostForm("category"); category != "" {
		product.Category = category
	}
	if stock := c.PostForm("stock"); stock != "" {
		product.Stock = stock
	}

	if form, err := c.MultipartForm(); err == nil {
		files := form.File["images"]
		if len(files) > maxProductImages {
			files = files[:maxProductImages]
		}
		if len(files) > 0 {
			images, err := uploadProductImages(ctx, files)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
				return
			}
			product.Images = append(product.Images, images...)
			if product.Image == "" {
				product.Image = images[0]
			}
		}
	}

	if product.Image == "" && len(product.Images) > 0 {
		product.Image = product.Images[0]
	}

	_, err = database.ProductCollection.ReplaceOne(ctx, bson.M{"_id": id}, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

func DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.ProductCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product Deleted Successfully"})
}

func uploadProductImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if services.Uploads == nil {
		return nil, errors.New("image uploads are not configured")
	}
	urls := make([]string, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		url, err := services.Uploads.UploadImage(ctx, file, "products")
		file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
