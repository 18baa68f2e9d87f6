package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"quickbite/internal/models"
	"quickbite/internal/repository"

	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type application struct {
	errorLog   *log.Logger
	infoLog    *log.Logger
	session    *scs.SessionManager
	db         *models.MongoDB
	sellers    *repository.SellerRepository
	users      *repository.UserRepository
	uploadDir  string
	corsOrigin string
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment")
	}

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "dominos_system"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}

	addr := flag.String("addr", ":8000", "HTTP network address")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		errorLog.Fatal(err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		errorLog.Fatal(err)
	}
	infoLog.Println("Connected to MongoDB")
	defer client.Disconnect(context.Background())

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		errorLog.Fatal(err)
	}

	db := models.NewMongoDB(client.Database(dbName))

	session := scs.New()
	session.Lifetime = 12 * time.Hour

	app := &application{
		errorLog:   errorLog,
		infoLog:    infoLog,
		session:    session,
		db:         db,
		sellers:    &repository.SellerRepository{Collection: db.Sellers},
		users:      &repository.UserRepository{Collection: db.Users},
		uploadDir:  uploadDir,
		corsOrigin: corsOrigin,
	}

	srv := &http.Server{
		Addr:     *addr,
		ErrorLog: errorLog,
		Handler:  app.routes(),
	}

	infoLog.Printf("Starting server on %s", *addr)
	err = srv.ListenAndServe()
	errorLog.Fatal(err)
}
