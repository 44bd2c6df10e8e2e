package router

import (
	"time"

	"github.com/Alexdguimaraes/controle-faccao/internal/config"
	"github.com/Alexdguimaraes/controle-faccao/internal/handler"
	"github.com/Alexdguimaraes/controle-faccao/internal/middleware"
	"github.com/Alexdguimaraes/controle-faccao/internal/repository"
	"github.com/Alexdguimaraes/controle-faccao/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB (+ optional Redis).
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	remessaRepo := repository.NewRemessaRepository(db)
	financeiroRepo := repository.NewFinanceiroRepository(db)
	configRepo := repository.NewConfigRepository(db)
	modeloRepo := repository.NewModeloRepository(db)
	bancoRepo := repository.NewBancoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	clienteSvc := service.NewClienteService(clienteRepo)
	remessaSvc := service.NewRemessaService(remessaRepo, configRepo, financeiroRepo, clienteRepo)
	financeiroSvc := service.NewFinanceiroService(financeiroRepo)
	modeloSvc := service.NewModeloService(modeloRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	clientesH := handler.NewClientesHandler(clienteSvc, rdb)
	remessasH := handler.NewRemessasHandler(remessaSvc)
	financeiroH := handler.NewFinanceiroHandler(financeiroSvc)
	modelosH := handler.NewModelosHandler(modeloSvc)
	bancosH := handler.NewBancosHandler(bancoRepo, financeiroSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Cadastrar)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/resumo", clientesH.Resumo)
			clientes.GET("/:id", clientesH.BuscarPorID)
		}

		remessas := v1.Group("/remessas")
		{
			remessas.POST("", remessasH.Criar)
			remessas.GET("", remessasH.Listar)
			remessas.GET("/atrasadas", remessasH.ListarAtrasadas)
			remessas.GET("/estatisticas", remessasH.Estatisticas)
			remessas.GET("/:id", remessasH.BuscarPorID)
			remessas.POST("/:id/entregas", remessasH.RegistrarEntrega)
		}

		financeiro := v1.Group("/financeiro")
		{
			financeiro.GET("", financeiroH.Listar)
			financeiro.GET("/totais", financeiroH.Totais)
			financeiro.GET("/recebido-mensal", financeiroH.RecebidoMensal)
			financeiro.POST("/:id/liquidar", financeiroH.Liquidar)
		}

		modelos := v1.Group("/modelos")
		{
			modelos.POST("", modelosH.Cadastrar)
			modelos.GET("", modelosH.Listar)
			modelos.GET("/:nome", modelosH.BuscarPorNome)
		}

		v1.GET("/bancos", bancosH.Listar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
